// Command commentary-extract converts a CCEL ThML commentary source
// into the per-book JSON consumed by the study application.
//
// Usage:
//
//	commentary-extract <xml-file> <book-name> [<output-dir>]
//
// Example:
//
//	commentary-extract calcom38.xml.xz Romans public/data/commentary/calvin
package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/edydex/bible-study-tool/core/books"
	"github.com/edydex/bible-study-tool/core/commentary"
	"github.com/edydex/bible-study-tool/core/digest"
	"github.com/edydex/bible-study-tool/core/thml"
	"github.com/edydex/bible-study-tool/internal/archive"
)

// CLI defines the command-line interface for commentary-extract.
var CLI struct {
	Input     string `arg:"" help:"ThML XML input file (.xz and .gz are decompressed transparently)" type:"existingfile"`
	Book      string `arg:"" help:"Canonical book name the extraction targets (e.g. 'Romans', '1 Corinthians')"`
	OutputDir string `arg:"" optional:"" default:"public/data/commentary/calvin" help:"Directory the per-book JSON is written to"`

	Author   string `help:"Author name recorded in metadata" default:"John Calvin"`
	AuthorID string `name:"author-id" help:"Author id recorded in metadata" default:"john-calvin"`
	IDPrefix string `name:"id-prefix" help:"Record id prefix" default:"calvin"`
}

func run() error {
	book, ok := books.ByName(CLI.Book)
	if !ok {
		return fmt.Errorf("%w: %s (supported: %s)",
			books.ErrUnknownBook, CLI.Book, strings.Join(books.Names(), ", "))
	}

	fmt.Printf("Parsing %s's commentary on %s (looking for %s)...\n",
		CLI.Author, book.Name, book.CCEL)

	data, err := archive.ReadInput(CLI.Input)
	if err != nil {
		return err
	}

	records, report, err := thml.Extract(data, book, CLI.IDPrefix)
	if err != nil {
		return err
	}

	fmt.Printf("\nExtracted %d commentary entries (%d markers, %d matched, %d skipped)\n",
		report.Records, report.Markers, report.Matched, report.Skipped)
	printChapterBreakdown(report.ChapterTally)

	hashes := digest.Sum(data)
	slug := books.Slug(book.Name)
	doc := &commentary.Document{
		Metadata: commentary.Metadata{
			Author:       CLI.Author,
			AuthorID:     CLI.AuthorID,
			WorkID:       fmt.Sprintf("%s-%s", CLI.IDPrefix, slug),
			Title:        fmt.Sprintf("Commentary on %s", book.Name),
			Type:         "Written Commentary",
			Year:         "1540s-1560s",
			Translation:  "Calvin Translation Society (1840s)",
			Source:       "Christian Classics Ethereal Library (CCEL)",
			SourceURL:    "https://ccel.org/ccel/calvin",
			License:      "Public Domain",
			Book:         book.Name,
			SourceSHA256: hashes.SHA256,
			SourceBLAKE3: hashes.BLAKE3,
		},
		Commentaries: records,
	}

	if sample, ok := doc.Sample(); ok {
		fmt.Printf("\nSample entry (%s):\n", sample.Reference)
		fmt.Printf("  Text preview: %s...\n", preview(sample.Text, 200))
	}

	outPath := filepath.Join(CLI.OutputDir, slug+".json")
	if err := doc.WriteFile(outPath); err != nil {
		return err
	}
	fmt.Printf("\nOutput written to %s\n", outPath)
	return nil
}

func printChapterBreakdown(tally map[int]int) {
	chapters := make([]int, 0, len(tally))
	for ch := range tally {
		chapters = append(chapters, ch)
	}
	sort.Ints(chapters)
	fmt.Println("Chapter breakdown:")
	for _, ch := range chapters {
		fmt.Printf("  Chapter %d: %d entries\n", ch, tally[ch])
	}
}

func preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("commentary-extract"),
		kong.Description("Convert a CCEL ThML commentary into per-book JSON"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(run())
}

// Command transcript-parse segments a video-transcript markdown file
// into the JSON consumed by the study application.
//
// Usage:
//
//	transcript-parse <markdown-file> [--out <path>]
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/edydex/bible-study-tool/core/books"
	"github.com/edydex/bible-study-tool/core/commentary"
	"github.com/edydex/bible-study-tool/core/digest"
	"github.com/edydex/bible-study-tool/core/transcript"
	"github.com/edydex/bible-study-tool/internal/archive"
)

// CLI defines the command-line interface for transcript-parse.
var CLI struct {
	Input string `arg:"" help:"Transcript markdown input file" type:"existingfile"`
	Out   string `help:"Output JSON path" default:"public/data/commentary/ortlund/revelation.json"`

	Book     string `help:"Book the transcript covers" default:"Revelation"`
	Author   string `help:"Author name recorded in metadata" default:"Gavin Ortlund"`
	AuthorID string `name:"author-id" help:"Author id recorded in metadata" default:"gavin-ortlund"`
	IDPrefix string `name:"id-prefix" help:"Record id prefix" default:"ortlund"`
	Title    string `help:"Work title recorded in metadata" default:"Explaining Every Chapter of Revelation"`
}

func run() error {
	book, ok := books.ByName(CLI.Book)
	if !ok {
		return fmt.Errorf("%w: %s (supported: %s)",
			books.ErrUnknownBook, CLI.Book, strings.Join(books.Names(), ", "))
	}

	data, err := archive.ReadInput(CLI.Input)
	if err != nil {
		return err
	}

	seg := &transcript.Segmenter{IDPrefix: CLI.IDPrefix, Book: book}
	intro, records, report := seg.Segment(string(data))

	hashes := digest.Sum(data)
	doc := &commentary.Document{
		Metadata: commentary.Metadata{
			Author:       CLI.Author,
			AuthorID:     CLI.AuthorID,
			WorkID:       fmt.Sprintf("%s-every-chapter", CLI.IDPrefix),
			Title:        CLI.Title,
			Type:         "Video Commentary",
			Year:         "2024",
			Source:       "YouTube",
			OriginalURL:  "https://www.youtube.com/watch?v=hnphJMQ1AwA",
			Book:         book.Name,
			SourceSHA256: hashes.SHA256,
			SourceBLAKE3: hashes.BLAKE3,
		},
		Introduction: intro,
		Commentaries: records,
	}

	if err := doc.WriteFile(CLI.Out); err != nil {
		return err
	}

	fmt.Printf("Parsed %d introduction sections\n", len(intro))
	fmt.Printf("Parsed %d chapter commentaries\n", len(records))
	if len(report.Dropped) > 0 {
		fmt.Printf("Dropped %d unclassifiable sections\n", len(report.Dropped))
	}
	fmt.Printf("Chapters covered: %s\n", chapterList(report.ChapterTally))
	fmt.Printf("Output written to %s\n", CLI.Out)
	return nil
}

func chapterList(tally map[int]int) string {
	chapters := make([]int, 0, len(tally))
	for ch := range tally {
		chapters = append(chapters, ch)
	}
	sort.Ints(chapters)
	parts := make([]string, len(chapters))
	for i, ch := range chapters {
		parts[i] = fmt.Sprint(ch)
	}
	return strings.Join(parts, ", ")
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("transcript-parse"),
		kong.Description("Segment a video-transcript markdown file into commentary JSON"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	ctx.FatalIfErrorf(run())
}

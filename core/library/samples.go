package library

import "github.com/edydex/bible-study-tool/core/commentary"

// Sample excerpts for non-bundled authors. These ship inline and are
// marked loaded so the lazy loader never fetches them.

func macarthurSamples() []Work {
	return []Work{
		{
			ID:     "macarthur-revelation-1",
			Title:  "Because the Time Is Near",
			Book:   "Revelation",
			Type:   "Book",
			Year:   "2007",
			Loaded: true,
			Commentaries: []commentary.Record{
				{
					ID:        "mac_1_1_3",
					Reference: "Revelation 1:1-3",
					Chapter:   1,
					Verses:    commentary.VerseRange(1, 1, 3),
					Text:      "The book of Revelation is the only New Testament book that begins by specifically promising blessing to those who read it and obey its message. The Greek word translated 'revelation' is apokalypsis, from which the English word apocalypse derives.\n\nThis revelation came from God the Father, through Jesus Christ, by means of an angel, to John, and finally to the servants of God—the church. The chain of transmission demonstrates both the divine origin and the intended human audience of this prophecy.",
				},
				{
					ID:        "mac_1_4_8",
					Reference: "Revelation 1:4-8",
					Chapter:   1,
					Verses:    commentary.VerseRange(1, 4, 8),
					Text:      "John greets the seven churches with grace and peace from the triune God. The unique description of God as 'Him who is and who was and who is to come' emphasizes His eternal, unchanging nature.\n\nJesus Christ is described with three titles: the faithful witness, the firstborn from the dead, and the ruler of the kings of the earth. Each title reveals an aspect of His work and authority.",
				},
				{
					ID:        "mac_6_1_8",
					Reference: "Revelation 6:1-8",
					Chapter:   6,
					Verses:    commentary.VerseRange(6, 1, 8),
					Text:      "The four horsemen represent the beginning of God's judgment on the earth during the tribulation. The white horse rider is not Christ (as some suggest) but represents the Antichrist, who comes as a false peacemaker.\n\nThe red horse represents warfare, the black horse represents famine, and the pale horse represents death. These four judgments will affect one-fourth of the earth's population.",
				},
				{
					ID:        "mac_13_1_10",
					Reference: "Revelation 13:1-10",
					Chapter:   13,
					Verses:    commentary.VerseRange(13, 1, 10),
					Text:      "The beast from the sea represents the final world ruler, the Antichrist. His seven heads and ten horns connect him with the dragon (Satan) and indicate his vast political power.\n\nThe beast's fatal wound that was healed may refer to a literal assassination and resurrection, or to the revival of a former world empire. Either way, it will cause the world to marvel and worship the beast.",
				},
			},
		},
		{
			ID:     "macarthur-sermons",
			Title:  "Revelation Sermon Series",
			Book:   "Revelation",
			Type:   "Sermon Series",
			Year:   "2019",
			Loaded: true,
			Commentaries: []commentary.Record{
				{
					ID:        "mac_ser_1_9_20",
					Reference: "Revelation 1:9-20",
					Chapter:   1,
					Verses:    commentary.VerseRange(1, 9, 20),
					Text:      "John's vision of Christ in His glory is one of the most magnificent Christophanies in Scripture. Every detail reveals something about our Lord's divine nature and authority.\n\nThe long robe speaks of His priestly dignity. The golden sash speaks of His royal authority. His white hair speaks of His eternal wisdom. His eyes like fire speak of His omniscient judgment. His feet of bronze speak of His firm stance in judgment. His voice like many waters speaks of His awesome power.",
				},
				{
					ID:        "mac_ser_4_1_11",
					Reference: "Revelation 4:1-11",
					Chapter:   4,
					Verses:    commentary.VerseRange(4, 1, 11),
					Text:      "Heaven's throne room is the command center of the universe. Everything proceeds from God's throne, and everything will one day answer to it.\n\nThe twenty-four elders represent the redeemed church in heaven. The four living creatures represent the highest order of angelic beings. Together, they lead all of heaven in ceaseless worship of the One who sits on the throne.",
				},
			},
		},
	}
}

func sproulSamples() []Work {
	return []Work{{
		ID:     "sproul-last-days",
		Title:  "The Last Days According to Jesus",
		Book:   "Revelation",
		Type:   "Book",
		Year:   "1998",
		Loaded: true,
		Commentaries: []commentary.Record{
			{
				ID:        "sproul_1_1_3",
				Reference: "Revelation 1:1-3",
				Chapter:   1,
				Verses:    commentary.VerseRange(1, 1, 3),
				Text:      "The time-frame references in Revelation are crucial for interpretation. When John writes that these things 'must soon take place' and 'the time is near,' we must take these temporal indicators seriously.\n\nThis doesn't mean that nothing in Revelation pertains to the distant future, but it does mean that the original audience expected at least some fulfillment in their lifetime. The book was meant to bring comfort and instruction to first-century Christians facing persecution.",
			},
			{
				ID:        "sproul_6_12_17",
				Reference: "Revelation 6:12-17",
				Chapter:   6,
				Verses:    commentary.VerseRange(6, 12, 17),
				Text:      "The cosmic imagery of the sixth seal draws from Old Testament prophetic language. Similar language was used to describe the fall of Babylon, Egypt, and other nations.\n\nThis apocalyptic imagery represents the dramatic upheaval of the established order. Whether fulfilled in AD 70, in a future tribulation, or progressively throughout history, the message is clear: God will judge the rebellious and vindicate His people.",
			},
			{
				ID:        "sproul_20_1_6",
				Reference: "Revelation 20:1-6",
				Chapter:   20,
				Verses:    commentary.VerseRange(20, 1, 6),
				Text:      "The millennium has been one of the most debated passages in church history. The three main views—premillennialism, postmillennialism, and amillennialism—each have strong advocates throughout church history.\n\nWhat unites all orthodox interpreters is the certainty of Christ's victory, the reality of final judgment, and the hope of eternal life for all who trust in Him. The specific timing and nature of the millennium should not divide believers.",
			},
		},
	}}
}

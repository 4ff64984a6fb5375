package render

// BlockStyle captures the formatting each composer applies to a block kind.
type BlockStyle struct {
	Bold       bool
	Italic     bool
	Size       float64
	Leading    float64
	Color      string
	SpaceAfter float64
}

const (
	// FontFamily is the DOCX run font. PDF output embeds pdfFaces instead.
	FontFamily   = "Helvetica"
	BodySize     = 11
	BodyLeading  = 14
	HeadingColor = "1F2937"
	NameColor    = "111111"
	MetaColor    = "808080"
	BodyColor    = "000000"
	SpacerHeight = 6
)

// StyleMap centralizes the formatting for every block kind.
var StyleMap = map[BlockKind]BlockStyle{
	BlockName: {
		Bold:       true,
		Size:       18,
		Leading:    22,
		Color:      NameColor,
		SpaceAfter: 6,
	},
	BlockTitle: {
		Italic:  true,
		Size:    12,
		Leading: 14,
		Color:   MetaColor,
	},
	BlockHeading: {
		Bold:       true,
		Size:       12,
		Leading:    15,
		Color:      HeadingColor,
		SpaceAfter: 4,
	},
	BlockEntry: {
		Bold:    true,
		Size:    BodySize,
		Leading: BodyLeading,
		Color:   BodyColor,
	},
	BlockMeta: {
		Italic:  true,
		Size:    10,
		Leading: 13,
		Color:   MetaColor,
	},
	BlockLine: {
		Size:    BodySize,
		Leading: BodyLeading,
		Color:   BodyColor,
	},
	BlockBullet: {
		Size:    BodySize,
		Leading: BodyLeading,
		Color:   BodyColor,
	},
}

func styleFor(kind BlockKind) BlockStyle {
	if style, ok := StyleMap[kind]; ok {
		return style
	}
	return StyleMap[BlockLine]
}

package report

// RGB is one color of the document palette.
type RGB struct {
	R int
	G int
	B int
}

// Style is the brand configuration of the generated documents:
// palette, typography and the chrome copy stamped on every page.
// Builders take it by value and never change it.
type Style struct {
	Font           string
	DeepBlue       RGB
	Violet         RGB
	MagentaPink    RGB
	LightBlue      RGB
	SoftLavender   RGB
	White          RGB
	HeaderTitle    string
	HeaderSubtitle string
	FooterText     string
	Compression    bool
}

// DefaultStyle returns the Excelra brand style.
func DefaultStyle() Style {
	return Style{
		Font:           "Helvetica",
		DeepBlue:       RGB{R: 10, G: 30, B: 74},
		Violet:         RGB{R: 162, G: 77, B: 190},
		MagentaPink:    RGB{R: 224, G: 79, B: 138},
		LightBlue:      RGB{R: 179, G: 224, B: 242},
		SoftLavender:   RGB{R: 227, G: 217, B: 242},
		White:          RGB{R: 255, G: 255, B: 255},
		HeaderTitle:    "Indication Expansion Analysis",
		HeaderSubtitle: "Powered by Excelra GRIP Platform",
		FooterText:     "www.excelra.com | Where data means more",
		Compression:    true,
	}
}

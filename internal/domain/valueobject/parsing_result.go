package valueobject

// ParsingResult is produced by an extraction strategy. It is either an Index or a Component.
type ParsingResult interface {
	parsingResult()
}

// Warning describes a recoverable problem found while extracting a fragment.
type Warning struct {
	Path        string
	Declaration string
	Message     string
}

// Extraction holds the ordered results and warnings of one fragment.
type Extraction struct {
	Results  []ParsingResult
	Warnings []Warning
}

// WithPath returns a copy of the extraction whose warnings name the given path.
func (e Extraction) WithPath(path string) Extraction {
	warnings := make([]Warning, len(e.Warnings))
	for i, w := range e.Warnings {
		w.Path = path
		warnings[i] = w
	}
	return Extraction{Results: e.Results, Warnings: warnings}
}

package wetsplit

// Suitableness scores. Lower is better.
const (
	// ScoreSpecific is returned when a document matches the extractor's schema exactly.
	ScoreSpecific = 5
	// ScorePartial is returned when only the outer schema matched.
	ScorePartial = 50
	// ScorePDFFallback is returned by the generic PDF splitter.
	ScorePDFFallback = 100
	// ScoreGenericFallback is returned by the generic XML and HTML splitters.
	ScoreGenericFallback = 500
	// ScoreNotThisSchema is returned when a document is well-formed but of another family.
	ScoreNotThisSchema = 5000
	// DefaultThreshold is the score at or above which a candidate is discarded.
	DefaultThreshold = 1000
)

// Extractor turns one family of documents into fragments.
//
// Fragments can only be obtained from an Evaluation, so an extractor can
// never be asked for fragments before it has scored the document.
type Extractor interface {
	// Name identifies the extractor in registries, logs and configuration.
	Name() string

	// Accepts is a cheap format check. It returns the bytes the extractor
	// will work on, which may differ from doc (e.g. an unzipped HTML file
	// or a patched XML declaration).
	Accepts(doc []byte) ([]byte, bool)

	// Evaluate parses the accepted bytes and scores them.
	Evaluate(doc []byte) (Evaluation, error)
}

// Evaluation is the result of scoring one document with one extractor.
type Evaluation interface {
	Score() int
	Fragments() ([]Fragment, error)
}

// Record is an Extractor assembled from functions. The state S produced
// by SuitablenessFn is handed to FragmentsFn unchanged.
type Record[S any] struct {
	ID             string
	AcceptsFn      func(doc []byte) ([]byte, bool)
	SuitablenessFn func(doc []byte) (int, S, error)
	FragmentsFn    func(state S) ([]Fragment, error)
}

// Name implements Extractor.
func (r *Record[S]) Name() string {
	return r.ID
}

// Accepts implements Extractor.
func (r *Record[S]) Accepts(doc []byte) ([]byte, bool) {
	if r.AcceptsFn == nil {
		return doc, true
	}
	return r.AcceptsFn(doc)
}

// Evaluate implements Extractor.
func (r *Record[S]) Evaluate(doc []byte) (Evaluation, error) {
	if r.SuitablenessFn == nil {
		return nil, Errorf(EINVALID, "extractor %q has no suitableness function", r.ID)
	}
	score, state, err := r.SuitablenessFn(doc)
	if err != nil {
		return nil, err
	}
	return &evaluation[S]{score: score, state: state, fragments: r.FragmentsFn}, nil
}

type evaluation[S any] struct {
	score     int
	state     S
	fragments func(S) ([]Fragment, error)
}

func (e *evaluation[S]) Score() int {
	return e.score
}

func (e *evaluation[S]) Fragments() ([]Fragment, error) {
	if e.fragments == nil {
		return nil, Errorf(EUNSUPPORTED, "extractor produces no fragments")
	}
	return e.fragments(e.state)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML pages, removing boilerplate.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

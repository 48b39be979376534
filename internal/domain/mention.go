package domain

// Source identifies one of the external news-mention datasets.
type Source string

const (
	SourceGDELT   Source = "gdelt"
	SourceNewsAPI Source = "newsapi"
)

// Sources lists every dataset the ranking combines, in combination order.
var Sources = []Source{SourceGDELT, SourceNewsAPI}

// MentionObservation records how often one source mentioned a company in
// one month. A nil Count is the absent state: the source returned no
// usable data. Absent is meaningful and distinct from a true zero count.
type MentionObservation struct {
	CompanyID int64
	Source    Source
	Month     Month
	Count     *int
}

// Present reports whether the observation carries a usable count.
func (o MentionObservation) Present() bool {
	return o.Count != nil
}

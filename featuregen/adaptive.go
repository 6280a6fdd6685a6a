package featuregen

// OutcomePrior emits a constant feature, letting the model learn the prior
// outcome distribution.
type OutcomePrior struct {
	stateless
}

var _ Generator = OutcomePrior{}

func (OutcomePrior) Features(features []string, tokens []string, index int, prior []string) []string {
	return append(features, "def")
}

// PreviousMap remembers the outcome previously assigned to each token in the
// current document and emits it when the token recurs. This is the classic
// "label consistency" feature: a surface form already tagged as a person
// earlier in the document is likely a person again.
type PreviousMap struct {
	previous map[string]string
}

var _ Generator = &PreviousMap{}

// NewPreviousMap returns an empty previous-outcome map generator.
func NewPreviousMap() *PreviousMap {
	return &PreviousMap{previous: make(map[string]string)}
}

func (p *PreviousMap) Features(features []string, tokens []string, index int, prior []string) []string {
	return append(features, "pd="+p.previous[tokens[index]])
}

func (p *PreviousMap) UpdateAdaptiveData(tokens, outcomes []string) {
	for i := range tokens {
		if i < len(outcomes) {
			p.previous[tokens[i]] = outcomes[i]
		}
	}
}

func (p *PreviousMap) ClearAdaptiveData() {
	p.previous = make(map[string]string)
}

// Bigram emits surface and token-class bigrams with the neighboring tokens.
type Bigram struct {
	stateless
}

var _ Generator = Bigram{}

func (Bigram) Features(features []string, tokens []string, index int, prior []string) []string {
	wc := TokenClassOf(tokens[index])
	if index > 0 {
		features = append(features, "pw,w="+tokens[index-1]+","+tokens[index])
		features = append(features, "pwc,wc="+TokenClassOf(tokens[index-1])+","+wc)
	}
	if index+1 < len(tokens) {
		features = append(features, "w,nw="+tokens[index]+","+tokens[index+1])
		features = append(features, "wc,nc="+wc+","+TokenClassOf(tokens[index+1]))
	}
	return features
}

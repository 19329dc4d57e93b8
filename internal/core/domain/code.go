package domain

// CodeSnippet is a shared piece of code. Same shape as Project minus the
// sharing, voting and image fields; stored in its own collection.
type CodeSnippet struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FullDes     string `json:"full_des"`
	Status      string `json:"status"`
	Owner       string `json:"owner"`
	Adver       bool   `json:"adver"`
}

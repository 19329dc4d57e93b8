package domain

// Project is a showcased student project. Name is the lookup key but is not
// globally unique; operations that match by name alone resolve ties by taking
// the first match in collection order.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FullDes     string   `json:"full_des"`
	Status      string   `json:"status"`
	Owner       string   `json:"owner"`
	SharedWith  []string `json:"sharedWith"`
	Adver       bool     `json:"adver"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Likes       int      `json:"likes"`
	Dislikes    int      `json:"dislikes"`
	LikedBy     []string `json:"likedBy,omitempty"`
	DislikedBy  []string `json:"dislikedBy,omitempty"`
}

// LikedByVoter reports whether voter has an active like on the project.
func (p *Project) LikedByVoter(voter string) bool {
	return contains(p.LikedBy, voter)
}

// DislikedByVoter reports whether voter has an active dislike on the project.
func (p *Project) DislikedByVoter(voter string) bool {
	return contains(p.DislikedBy, voter)
}

// SharedWithUser reports whether username may view the project via the
// mentored-projects listing.
func (p *Project) SharedWithUser(username string) bool {
	return contains(p.SharedWith, username)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, item := range list {
		if item != s {
			out = append(out, item)
		}
	}
	return out
}

// AddLike records a like by voter. A prior dislike by the same voter is left
// untouched: only duplicate same-direction votes are rejected.
func (p *Project) AddLike(voter string) error {
	if p.LikedByVoter(voter) {
		return ErrAlreadyVoted
	}
	p.LikedBy = append(p.LikedBy, voter)
	p.Likes++
	return nil
}

// RemoveLike undoes a like by voter. The counter never goes below zero.
func (p *Project) RemoveLike(voter string) error {
	if !p.LikedByVoter(voter) {
		return ErrNotVoted
	}
	p.LikedBy = remove(p.LikedBy, voter)
	if p.Likes > 0 {
		p.Likes--
	}
	return nil
}

// AddDislike records a dislike by voter.
func (p *Project) AddDislike(voter string) error {
	if p.DislikedByVoter(voter) {
		return ErrAlreadyVoted
	}
	p.DislikedBy = append(p.DislikedBy, voter)
	p.Dislikes++
	return nil
}

// RemoveDislike undoes a dislike by voter. The counter never goes below zero.
func (p *Project) RemoveDislike(voter string) error {
	if !p.DislikedByVoter(voter) {
		return ErrNotVoted
	}
	p.DislikedBy = remove(p.DislikedBy, voter)
	if p.Dislikes > 0 {
		p.Dislikes--
	}
	return nil
}

package ledger

// Block records one resolved trick.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Trick     Trick  `json:"trick"`
}

// Trick is the outcome of a round: the cards played in order and who won.
type Trick struct {
	Round  int    `json:"round"`
	Plays  []Play `json:"plays"`
	Winner string `json:"winner"`
	Points int    `json:"points"`
}

// Play is a single card on the board.
type Play struct {
	Player      string `json:"player"`
	Card        string `json:"card"`
	NumericRank int    `json:"numeric_rank"`
}

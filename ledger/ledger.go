package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

const genesisPrevHash = "0"

type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
}

// New creates a ledger holding only the genesis block.
func New() *Ledger {
	l := &Ledger{}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// Append links a new block holding trick to the end of the chain.
func (l *Ledger) Append(trick Trick) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Trick:     trick,
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, block)
	return block, nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// ByIndex returns the block at index. The genesis block has index 0.
func (l *Ledger) ByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Tricks returns every recorded trick in play order, genesis excluded.
func (l *Ledger) Tricks() []Trick {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tricks := make([]Trick, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		tricks = append(tricks, b.Trick)
	}
	return tricks
}

// Totals replays the chain into the points of every winner.
func (l *Ledger) Totals() map[string]int {
	totals := map[string]int{}
	for _, t := range l.Tricks() {
		totals[t.Winner] += t.Points
	}
	return totals
}

// Verify checks the genesis block and the linkage and hash of every block.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != genesisPrevHash || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash hashes the index, timestamp, previous hash and the JSON
// encoding of the trick.
func calculateHash(block Block) string {
	trickBytes, _ := json.Marshal(block.Trick)
	data := fmt.Sprintf("%d%d%s%s", block.Index, block.Timestamp, block.PrevHash, trickBytes)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

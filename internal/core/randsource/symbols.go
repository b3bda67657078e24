package randsource

import (
	"math/rand/v2"
	"sync"

	pkgif "github.com/dep2p/go-hashaddr/pkg/interfaces"
)

// globalSymbols 使用 math/rand/v2 的全局源，本身并发安全
type globalSymbols struct{}

func (globalSymbols) IntN(n int) int {
	return rand.IntN(n)
}

// seededSymbols 固定种子的可复现符号源
//
// *rand.Rand 不是并发安全的，用互斥锁保护。
type seededSymbols struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededSymbols) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSymbols 返回非密码学的符号源
func NewSymbols() pkgif.SymbolSource {
	return globalSymbols{}
}

// NewSeededSymbols 返回固定种子的符号源，相同种子产生相同序列
func NewSeededSymbols(seed uint64) pkgif.SymbolSource {
	return &seededSymbols{r: rand.New(rand.NewPCG(seed, seed))}
}

package xorshift

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// entropyPool hands out seeds for generators constructed without an explicit seed.
// It reads random bytes from crypto/rand in batches to reduce the number of calls to the
// operating system. Unlike Generator it is shared by the whole process and therefore guarded by a mutex.
type entropyPool struct {
	mu     sync.Mutex
	bufPos uint32
	buf    []byte
}

const entropyPoolBytes = 512

var processEntropy = newEntropyPool(entropyPoolBytes)

func newEntropyPool(capBytes uint32) *entropyPool {
	if capBytes < 8 {
		capBytes = 8 // minimum buffer size to hold at least one uint64
	}
	capBytes -= capBytes % 8
	e := &entropyPool{buf: make([]byte, capBytes)}
	e.fill()
	return e
}

// fill panics if the operating system cannot provide entropy; there is no sensible fallback.
func (e *entropyPool) fill() {
	if _, err := rand.Read(e.buf); err != nil {
		panic(err)
	}
	e.bufPos = 0
}

// Uint64 returns 64 bits of operating system entropy.
func (e *entropyPool) Uint64() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.bufPos+8 > uint32(len(e.buf)) {
		e.fill()
	}
	v := binary.LittleEndian.Uint64(e.buf[e.bufPos : e.bufPos+8])
	e.bufPos += 8
	return v
}

package aessiv

import "github.com/sirupsen/logrus"

// s2vPhase tracks which part of the String-to-Vector protocol an S2V
// instance is in. Associated-data strings may only be added in
// phaseAddingAD; once plaintext streaming or finalization has begun, later
// UpdateAAD calls are silently ignored rather than corrupting the
// accumulator.
type s2vPhase int

const (
	phaseAddingAD s2vPhase = iota
	phaseStreamingPT
	phaseDone
)

// S2V implements the "string to vector" construction at the heart of
// AES-SIV: a chain of CMACs over an ordered vector of associated-data
// strings plus the plaintext, combined with dbl and an xorend trick, into a
// single 128-bit synthetic IV.
type S2V struct {
	cmacAD *CMAC
	cmacPT *CMAC
	d      [16]byte
	empty  bool
	phase  s2vPhase
	buf    *ByteBlock

	// Logger, if set, traces the running accumulator d at init, after
	// each UpdateAAD, and at Finalize -- the intermediate values RFC
	// 5297's own test vectors are quoted against.
	Logger *logrus.Logger
}

// NewS2V builds an S2V instance over key, which must be a valid AES key
// length (16, 24, or 32 bytes). Two independent CMAC instances sharing key
// are kept internally: one for associated-data strings, one for the
// plaintext.
func NewS2V(key []byte) (*S2V, error) {
	cmacAD, err := NewCMAC(key)
	if err != nil {
		return nil, err
	}
	cmacPT, err := NewCMAC(key)
	if err != nil {
		return nil, err
	}

	s := &S2V{
		cmacAD: cmacAD,
		cmacPT: cmacPT,
		empty:  true,
		buf:    NewByteBlock(nil, 0),
	}
	s.d = cmacAD.MAC(Zero128[:])
	s.trace("init")
	return s, nil
}

// D returns the current value of the running accumulator. It is read-only
// and exists so tests can assert the intermediate values RFC 5297 quotes
// after each AAD string.
func (s *S2V) D() [16]byte {
	return s.d
}

// UpdateAAD absorbs one associated-data string into the accumulator. Once
// plaintext streaming (Update) or Finalize has been called, UpdateAAD is a
// silent no-op: an S2V string vector is ordered and AD always precedes
// plaintext.
func (s *S2V) UpdateAAD(ad []byte) {
	if s.phase != phaseAddingAD {
		return
	}
	s.d = Dbl(s.d)
	mac := s.cmacAD.MAC(ad)
	xorBlock16(&s.d, &mac)
	s.empty = false
	s.trace("updateAAD")
}

// Update streams a chunk of the final string (the plaintext). It buffers
// internally and drains whole 16-byte blocks into the plaintext CMAC as
// soon as at least two blocks are buffered, always leaving the final
// partial-or-full block available for Finalize.
func (s *S2V) Update(chunk []byte) {
	s.phase = phaseStreamingPT
	s.buf.Concat(BlockFromBytes(chunk))
	for s.buf.SigBytes() >= 32 {
		block := s.buf.ShiftBytes(16)
		s.cmacPT.Update(block.Bytes())
	}
}

// Finalize absorbs an optional final plaintext chunk and returns the
// 16-byte synthetic IV. The instance moves to its DONE phase; it must not
// be reused afterward.
func (s *S2V) Finalize(tail []byte) [16]byte {
	s.phase = phaseStreamingPT
	if tail != nil {
		s.buf.Concat(BlockFromBytes(tail))
	}

	sn := s.buf.Bytes()
	var v [16]byte
	switch {
	case s.empty && len(sn) == 0:
		v = s.cmacAD.MAC(One128[:])
	case len(sn) >= 16:
		v = s.cmacPT.Finalize(XorEndBytes(sn, s.d[:]))
	default:
		dd := Dbl(s.d)
		var padded [16]byte
		copy(padded[:], sn)
		padded[len(sn)] = 0x80
		xorBlock16(&padded, &dd)
		v = s.cmacPT.Finalize(padded[:])
	}

	s.phase = phaseDone
	s.trace("finalize")
	return v
}

func (s *S2V) trace(event string) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"event": event,
		"d":     Stringify(s.d[:]),
	}).Debug("s2v")
}

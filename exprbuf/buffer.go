package exprbuf

// Range is a half-open byte range into a Buffer: [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of bytes spanned by r.
func (r Range) Len() int { return r.End - r.Start }

// Buffer is an append-only byte buffer holding zero or more sentinel-
// delimited tokens back to back. The high bit (0x80) of every token's
// final byte is set on append; nothing else in the buffer ever has that
// bit set, so a byte-for-byte comparison of two ranges is exactly a
// token-for-token comparison of their contents.
type Buffer struct {
	bytes []byte
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.bytes) }

// Reset discards all bytes, retaining the underlying array for reuse.
func (b *Buffer) Reset() { b.bytes = b.bytes[:0] }

// Truncate discards everything from byte offset n onward. It panics if n
// is out of range, mirroring a slice re-slice.
func (b *Buffer) Truncate(n int) { b.bytes = b.bytes[:n] }

// Slice returns the bytes in r. The returned slice is backed by the
// buffer's storage and is invalidated by the next Append once growth
// reallocates; callers that need a stable copy must copy it themselves.
func (b *Buffer) Slice(r Range) []byte { return b.bytes[r.Start:r.End] }

// Bytes returns the buffer's entire contents so far.
func (b *Buffer) Bytes() []byte { return b.bytes }

// Append copies token onto the end of the buffer, setting the sentinel
// bit on its own final byte without mutating the caller's slice, and
// returns the range it now occupies.
func (b *Buffer) Append(token []byte) Range {
	start := len(b.bytes)
	b.bytes = append(b.bytes, token...)
	if n := len(b.bytes); n > start {
		b.bytes[n-1] |= 0x80
	}
	return Range{Start: start, End: len(b.bytes)}
}

// AppendRaw copies raw bytes onto the end of the buffer verbatim, setting
// no sentinel bit of its own. The verifier uses it for constant fragments
// whose bytes already carry their sentinel encoding, so the result can be
// compared against other sentinel-delimited content.
func (b *Buffer) AppendRaw(raw []byte) Range {
	start := len(b.bytes)
	b.bytes = append(b.bytes, raw...)
	return Range{Start: start, End: len(b.bytes)}
}

// AppendRange copies the bytes of src currently occupying r onto the end
// of b, preserving whatever sentinel bits they already carry. This is how
// a substituted sub-expression's already-encoded bytes get spliced into a
// larger buffer without touching their encoding.
func (b *Buffer) AppendRange(src *Buffer, r Range) Range {
	return b.appendBytes(src.Slice(r))
}

func (b *Buffer) appendBytes(bs []byte) Range {
	start := len(b.bytes)
	b.bytes = append(b.bytes, bs...)
	return Range{Start: start, End: len(b.bytes)}
}

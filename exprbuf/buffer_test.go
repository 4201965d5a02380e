package exprbuf

import "testing"

func TestAppendSetsSentinelOnFinalByte(t *testing.T) {
	var b Buffer
	r := b.Append([]byte("wff"))
	got := b.Slice(r)
	if got[len(got)-1]&0x80 == 0 {
		t.Fatalf("expected sentinel bit set on final byte, got %x", got)
	}
	for i := 0; i < len(got)-1; i++ {
		if got[i]&0x80 != 0 {
			t.Fatalf("sentinel bit must only be set on the final byte, got %x at %d", got[i], i)
		}
	}
}

func TestAppendDoesNotMutateCaller(t *testing.T) {
	var b Buffer
	tok := []byte("ph")
	orig := append([]byte(nil), tok...)
	b.Append(tok)
	if tok[len(tok)-1] != orig[len(orig)-1] {
		t.Fatal("Append must not mutate the caller's slice")
	}
}

func TestSliceRoundTripsMultipleTokens(t *testing.T) {
	var b Buffer
	r1 := b.Append([]byte("wff"))
	r2 := b.Append([]byte("ph"))
	if string(b.Slice(r1)) != string([]byte{'w', 'f', 'f' | 0x80}) {
		t.Fatalf("unexpected first token bytes: %v", b.Slice(r1))
	}
	if r2.Start != r1.End {
		t.Fatalf("expected contiguous ranges, got %+v then %+v", r1, r2)
	}
}

func TestTruncateAndReset(t *testing.T) {
	var b Buffer
	b.Append([]byte("a"))
	mark := b.Len()
	b.Append([]byte("bb"))
	b.Truncate(mark)
	if b.Len() != mark {
		t.Fatalf("expected length %d after truncate, got %d", mark, b.Len())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("expected empty buffer after reset, got %d", b.Len())
	}
}

func TestAppendRangePreservesSentinelEncoding(t *testing.T) {
	var src Buffer
	r := src.Append([]byte("ps"))

	var dst Buffer
	dst.Append([]byte("("))
	spliced := dst.AppendRange(&src, r)
	got := dst.Slice(spliced)
	if got[len(got)-1]&0x80 == 0 {
		t.Fatal("spliced range should retain its sentinel bit")
	}
}

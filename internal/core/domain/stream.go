package domain

import "io"

// ClipStream is an open byte stream over a clip, covering [Start, End]
// inclusive. The caller owns Body and must close it on every exit path.
type ClipStream struct {
	Clip    ClipRecord
	Start   uint64
	End     uint64
	Partial bool
	Body    io.ReadCloser
}

// ChunkSize is the number of bytes the stream covers.
func (s *ClipStream) ChunkSize() uint64 {
	return s.End - s.Start + 1
}

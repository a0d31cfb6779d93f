package bind_group_provider

// BufferWrite describes one queued write of Data into the buffer bound at Binding on
// Provider, starting Offset bytes into the buffer. Bytes outside [Offset, Offset+len(Data))
// are left untouched.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// End returns the first byte offset past the written range.
//
// Returns:
//   - uint64: Offset + len(Data)
func (w BufferWrite) End() uint64 {
	return w.Offset + uint64(len(w.Data))
}

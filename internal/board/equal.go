package board

// Equal reports whether b and other describe the same configuration:
// same dimensions, same cached cost, the same blocks by identity, size and
// position, the same empty cells and the same id index.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.rows != other.rows || b.cols != other.cols || b.cost != other.cost {
		return false
	}
	if len(b.blocks) != len(other.blocks) || len(b.index) != len(other.index) {
		return false
	}
	for i, blk := range b.blocks {
		if !blk.Equal(other.blocks[i]) {
			return false
		}
	}
	for id, blk := range b.index {
		if !blk.Equal(other.index[id]) {
			return false
		}
	}
	return b.grid.Equal(other.grid) && b.Hash() == other.Hash()
}

// Hash combines the block hashes with wrapping addition, so it does not
// depend on the order blocks were supplied in. Equal boards hash equally.
func (b *Board) Hash() uint64 {
	var h uint64
	for _, blk := range b.blocks {
		h += blk.Hash()
	}
	return h
}

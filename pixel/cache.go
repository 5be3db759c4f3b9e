package pixel

// Cache holds the most recently seen pixel for each of the 64 hash slots.
//
// The zero value is an empty cache with every slot set to (0,0,0,0). An encoder
// and a decoder that feed the same pixel sequence through Update observe the same
// cache contents after every position, which is what makes INDEX chunks decodable.
type Cache [CacheSize]Pixel

// Reset clears all slots back to (0,0,0,0).
func (c *Cache) Reset() {
	*c = Cache{}
}

// Lookup returns the pixel stored in slot hash. Only the low 6 bits of hash are used.
func (c *Cache) Lookup(hash uint8) Pixel {
	return c[hash&(CacheSize-1)]
}

// Update stores p in slot p.Hash(), overwriting the previous occupant.
func (c *Cache) Update(p Pixel) {
	c[p.Hash()] = p
}

// Index returns the slot of p and whether that slot currently holds p.
func (c *Cache) Index(p Pixel) (uint8, bool) {
	h := p.Hash()
	return h, c[h] == p
}

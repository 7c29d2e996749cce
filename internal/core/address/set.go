package address

// Set is an insertion-ordered set of normalized addresses.
// It is not safe for concurrent use.
type Set struct {
	index map[string]struct{}
	order []string
}

// NewSet creates an empty Set sized for n addresses.
func NewSet(n int) *Set {
	return &Set{
		index: make(map[string]struct{}, n),
		order: make([]string, 0, n),
	}
}

// Add normalizes and inserts an address. It reports false when the address
// is invalid or already present.
func (s *Set) Add(addr string) bool {
	n, ok := Normalize(addr)
	if !ok {
		return false
	}
	if _, exists := s.index[n]; exists {
		return false
	}
	s.index[n] = struct{}{}
	s.order = append(s.order, n)
	return true
}

// Contains checks if an address is in the set, ignoring case.
func (s *Set) Contains(addr string) bool {
	n, ok := Normalize(addr)
	if !ok {
		return false
	}
	_, exists := s.index[n]
	return exists
}

// Size returns the number of addresses.
func (s *Set) Size() int {
	return len(s.order)
}

// Addresses returns the addresses in insertion order.
func (s *Set) Addresses() []string {
	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

package oido

// EqualsSingle reports whether two note names are the same note, octave
// included.
func EqualsSingle(a, b string) bool {
	return a == b
}

// EqualsSequence compares two sequences position by position. During pattern
// entry it is called once per key press with the target cut to the length of
// the user's input.
func EqualsSequence(user, target []string) bool {
	if len(user) != len(target) {
		return false
	}
	for i := range user {
		if user[i] != target[i] {
			return false
		}
	}
	return true
}

// EqualsSet reports whether the two collections contain exactly the same
// names, ignoring order and repetitions.
func EqualsSet(user, target []string) bool {
	u := make(map[string]struct{}, len(user))
	for _, n := range user {
		u[n] = struct{}{}
	}
	t := make(map[string]struct{}, len(target))
	for _, n := range target {
		t[n] = struct{}{}
	}
	if len(u) != len(t) {
		return false
	}
	for n := range u {
		if _, ok := t[n]; !ok {
			return false
		}
	}
	return true
}

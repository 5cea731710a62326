package quiz

// identityRand samples candidates in order and never reorders options.
type identityRand struct{}

func (identityRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func (identityRand) Shuffle(int, func(i, j int)) {}

// reverseRand samples candidates from the back and reverses options.
type reverseRand struct{}

func (reverseRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = n - 1 - i
	}
	return p
}

func (reverseRand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

package pam

import "gonum.org/v1/gonum/stat/distuv"

// stdNormal is the unit Gaussian shared by Q and QInv. distuv distributions
// are stateless value types, so the shared instance is safe for concurrent use.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Q is the Gaussian tail function: the probability that a standard normal
// variable exceeds x. Q(0) = 0.5, Q(-∞) = 1, Q(+∞) = 0.
func Q(x float64) float64 {
	return stdNormal.Survival(x)
}

// QInv is the inverse of Q on (0, 1): QInv(Q(x)) = x.
// Used to seed the inner root solver at the right scale.
func QInv(p float64) float64 {
	return stdNormal.Quantile(1 - p)
}

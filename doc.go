// Package gemmbitserial computes integer matrix products by decomposing
// each operand into its constituent bits and summing the binary AND and
// popcount products of those bit-planes, scaled by powers of two.
//
// A matrix of nbits-precision values is packed into an nbits-plane
// BitSerialMatrix (see BitSerialMatrix.Import). A GEMMContext then holds a
// packed LHS and RHS pair plus the block sizes the planner picked for
// them; GEMMContext.Multiply drives a binary GEMM once per (lhs-bit,
// rhs-bit) pair and accumulates the weighted results into an int32
// buffer, following the transposed-RHS/transposed-output convention used
// throughout this package: the RHS operand is supplied already
// transposed, and Multiply's result is likewise produced transposed
// (Res[c*lhs.NRows+r] holds the product of lhs row r against rhs row c).
//
// This trades the fixed-width integer or floating-point arithmetic of a
// conventional GEMM for low-precision workloads -- binary and ternary
// neural network layers, for instance -- where accumulating bitwise AND
// and population counts is far cheaper than a multiply-accumulate per
// element.
package gemmbitserial

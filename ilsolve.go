/*
Package ilsolve is a verified solver library for dense interval linear systems.
It provides a pure Go implementation of outward-rounded interval arithmetic,
interval matrix and vector containers, preconditioning strategies and a set of
enclosure algorithms (Gaussian elimination, Jacobi, Gauss-Seidel,
Hansen-Bliek-Rohn, Krawczyk), together with the exact Oettli-Prager
characterization of the solution set as a reference oracle for small systems.
*/
package ilsolve

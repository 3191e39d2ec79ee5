// Package testsupport provides shared fixtures for package tests: a small
// catalog dataset and configs that point at it.
package testsupport

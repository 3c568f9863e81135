package testcommon

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"

	"github.com/kpfaulkner/colour-go/vecmath"
)

// ReadTestFile returns the contents of a test fixture, failing the test if it
// cannot be read.
func ReadTestFile(t *testing.T, filepath string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath)
	if err != nil {
		t.Fatalf("error reading test file : %v", err)
	}
	return data
}

// InDelta reports whether expected and actual differ by at most delta.
func InDelta[T constraints.Float](expected T, actual T, delta T) bool {
	d := expected - actual
	return d >= -delta && d <= delta
}

func AssertVec3InDelta(t *testing.T, expected vecmath.Vec3, actual vecmath.Vec3, delta float32) bool {
	t.Helper()
	for i := range expected {
		if !InDelta(expected[i], actual[i], delta) {
			return assert.Fail(t, "vectors differ", "expected %v got %v (lane %d, delta %v)", expected, actual, i, delta)
		}
	}
	return true
}

func AssertVec4InDelta(t *testing.T, expected vecmath.Vec4, actual vecmath.Vec4, delta float32) bool {
	t.Helper()
	for i := range expected {
		if !InDelta(expected[i], actual[i], delta) {
			return assert.Fail(t, "vectors differ", "expected %v got %v (lane %d, delta %v)", expected, actual, i, delta)
		}
	}
	return true
}

func AssertMat3InDelta(t *testing.T, expected vecmath.Mat3, actual vecmath.Mat3, delta float32) bool {
	t.Helper()
	if !expected.ApproxEqual(actual, delta) {
		return assert.Fail(t, "matrices differ", "expected %v got %v (delta %v)", expected, actual, delta)
	}
	return true
}

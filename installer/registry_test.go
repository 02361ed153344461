package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeManager struct {
	name      string
	supported bool
}

func (m *fakeManager) Name() string { return m.name }

func (m *fakeManager) TestSupported(params TestParams) (*TestResult, error) {
	return &TestResult{Supported: m.supported}, nil
}

func (m *fakeManager) Install(params InstallParams) (*InstallResult, error) {
	return &InstallResult{}, nil
}

func Test_RegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("b", 25, &fakeManager{name: "b"})
	r.Register("a", 25, &fakeManager{name: "a"})
	r.Register("first", 10, &fakeManager{name: "first"})

	var names []string
	for _, m := range r.Sorted() {
		names = append(names, m.Name())
	}

	t.Logf("Lower priority first, ties keep registration order")
	assert.EqualValues(t, []string{"first", "b", "a"}, names)
}

func Test_RegistryProbe(t *testing.T) {
	r := NewRegistry()
	r.Register("never", 10, &fakeManager{name: "never"})
	r.Register("yes", 20, &fakeManager{name: "yes", supported: true})
	r.Register("also-yes", 30, &fakeManager{name: "also-yes", supported: true})

	m, err := r.Probe(TestParams{GameID: "undermine"})
	assert.NoError(t, err)
	if assert.NotNil(t, m) {
		t.Logf("Probing stops at the first supporting manager")
		assert.EqualValues(t, "yes", m.Name())
	}
}

func Test_RegistryProbeNothingSupported(t *testing.T) {
	r := NewRegistry()
	r.Register("never", 10, &fakeManager{name: "never"})

	m, err := r.Probe(TestParams{GameID: "undermine"})
	assert.NoError(t, err)
	assert.Nil(t, m)
}

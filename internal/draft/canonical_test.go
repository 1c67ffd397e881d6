package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	b, err := MarshalCanonical(map[string]any{"zebra": "z", "apple": "a", "mid": int64(1)})
	require.NoError(t, err)
	assert.Equal(t, `{"apple":"a","mid":1,"zebra":"z"}`, string(b))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	b, err := MarshalCanonical("<section> & </section>")
	require.NoError(t, err)
	assert.Equal(t, `"<section> & </section>"`, string(b))
}

func TestMarshalCanonicalRejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"fee": 1.5})
	assert.Error(t, err)
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	assert.Error(t, err)
}

func TestMarshalCanonicalMoneyAsMinorUnits(t *testing.T) {
	b, err := MarshalCanonical(FromUnits(150))
	require.NoError(t, err)
	assert.Equal(t, "15000", string(b))
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// "é" composed (U+00E9) vs decomposed (U+0065 U+0301) must marshal
	// identically, otherwise visually equal drafts fingerprint apart.
	composed, err := MarshalCanonical("café")
	require.NoError(t, err)
	decomposed, err := MarshalCanonical("café")
	require.NoError(t, err)
	assert.Equal(t, composed, decomposed)
}

func TestFingerprintDeterministic(t *testing.T) {
	d := testDraft()
	ov := []TextOverride{{
		SectionID: SectionBackground,
		NewText:   "edited",
		Timestamp: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}}

	a, err := Fingerprint(d, ov)
	require.NoError(t, err)
	b, err := Fingerprint(d, ov)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprintIgnoresToken(t *testing.T) {
	d := testDraft()
	a, err := Fingerprint(d, nil)
	require.NoError(t, err)

	d.Token = "another-session"
	b, err := Fingerprint(d, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFingerprintSensitiveToContent(t *testing.T) {
	d := testDraft()
	a, err := Fingerprint(d, nil)
	require.NoError(t, err)

	b, err := Fingerprint(d.WithServiceToggled("litigation", true), nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := Fingerprint(d, []TextOverride{{SectionID: SectionBackground, NewText: "x"}})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestFixedGeneratorSequence(t *testing.T) {
	gen := NewFixedGenerator("tok-1", "tok-2")
	assert.Equal(t, "tok-1", gen.Generate())
	assert.Equal(t, "tok-2", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7GeneratorProducesUniqueTokens(t *testing.T) {
	gen := UUIDv7Generator{}
	a := gen.Generate()
	b := gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

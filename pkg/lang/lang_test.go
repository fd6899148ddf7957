package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/apikit/pkg/lang"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   lang.Language
	}{
		{"empty header", "", lang.ES},
		{"english", "en", lang.EN},
		{"english uppercase", "EN", lang.EN},
		{"english region", "en-US", lang.EN},
		{"english among others", "fr-FR,fr;q=0.9,en;q=0.8", lang.EN},
		{"spanish", "es", lang.ES},
		{"spanish region", "es-ES", lang.ES},
		{"french", "fr-FR", lang.ES},
		{"portuguese", "pt-BR", lang.ES},
		{"substring match", "x-gen", lang.EN},
		{"whitespace only", "   ", lang.ES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lang.Detect(tt.header))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	l, err := lang.Parse(" EN ")
	require.NoError(t, err)
	assert.Equal(t, lang.EN, l)

	l, err = lang.Parse("es")
	require.NoError(t, err)
	assert.Equal(t, lang.ES, l)

	_, err = lang.Parse("fr")
	require.Error(t, err)
	assert.ErrorIs(t, err, lang.ErrUnsupported)
}

func TestTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.English, lang.EN.Tag())
	assert.Equal(t, language.Spanish, lang.ES.Tag())
	assert.Equal(t, language.Spanish, lang.Language("xx").Tag())
	assert.Equal(t, "en", lang.EN.String())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatType(t *testing.T) {
	t.Run("CatTypeFromID_Success", func(t *testing.T) {
		cat, err := CatTypeFromID("BRITISH_SHORTHAIR")
		require.NoError(t, err)
		assert.Equal(t, CatBritishShorthair, cat)
		assert.Equal(t, "British Shorthair", cat.English())
		assert.Equal(t, "英国短毛猫", cat.Chinese())
		assert.Equal(t, "英国短毛猫", cat.String())
	})
	t.Run("CatTypeFromID_Fail", func(t *testing.T) {
		_, err := CatTypeFromID("british_shorthair")
		assert.ErrorIs(t, err, ErrInvalidCatType)
	})
	t.Run("CatTypeFromEnglish", func(t *testing.T) {
		cat, ok := CatTypeFromEnglish("TUXEDO")
		require.True(t, ok)
		assert.Equal(t, CatBlack, cat)

		cat, ok = CatTypeFromEnglish("british_shorthair")
		require.True(t, ok)
		assert.Equal(t, CatBritishShorthair, cat)

		cat, ok = CatTypeFromEnglish("white")
		require.True(t, ok)
		assert.Equal(t, CatWhite, cat)

		_, ok = CatTypeFromEnglish("Ocelot")
		assert.False(t, ok)
	})
	t.Run("CatTypeLabel", func(t *testing.T) {
		assert.Equal(t, "黑猫", CatTypeLabel("ALL_BLACK"))
		assert.Equal(t, "Jellie", CatTypeLabel("JELLIE"))
		assert.Equal(t, "Ocelot Cat", CatTypeLabel("OCELOT_CAT"))
	})
	t.Run("CatTypes", func(t *testing.T) {
		types := CatTypes()
		assert.Len(t, types, 11)
		assert.Equal(t, CatAllBlack, types[0])
		for _, cat := range types {
			got, ok := CatTypeFromEnglish(cat.English())
			assert.True(t, ok, cat)
			assert.Equal(t, cat, got)
		}
	})
	t.Run("UnknownCatType", func(t *testing.T) {
		assert.Equal(t, "Ocelot", CatType("OCELOT").Chinese())
		assert.Equal(t, "Ocelot", CatType("OCELOT").English())
	})
}

func TestPandaGene(t *testing.T) {
	t.Run("PandaGeneFromID_Success", func(t *testing.T) {
		gene, err := PandaGeneFromID("PLAYFUL")
		require.NoError(t, err)
		assert.Equal(t, PandaPlayful, gene)
		assert.Equal(t, "Playful", gene.English())
		assert.Equal(t, "顽皮", gene.String())
	})
	t.Run("PandaGeneFromID_Fail", func(t *testing.T) {
		_, err := PandaGeneFromID("SLEEPY")
		assert.ErrorIs(t, err, ErrInvalidPandaGene)
	})
	t.Run("PandaGeneFromEnglish", func(t *testing.T) {
		gene, ok := PandaGeneFromEnglish("worried")
		require.True(t, ok)
		assert.Equal(t, PandaWorried, gene)

		_, ok = PandaGeneFromEnglish("sleepy")
		assert.False(t, ok)
	})
	t.Run("PandaGeneLabel", func(t *testing.T) {
		assert.Equal(t, "好斗", PandaGeneLabel("AGGRESSIVE"))
		assert.Equal(t, "Very Sleepy", PandaGeneLabel("VERY_SLEEPY"))
		assert.Len(t, PandaGenes(), 7)
	})
}

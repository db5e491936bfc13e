package bloq_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/bloq"
	"parcellocker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBloq(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create bloq with valid parameters", func(t *testing.T) {
		b, err := bloq.NewBloq(validID, "Luitton Vuis", "Champs-Elysees 101, Paris", kernel.France)

		require.NoError(t, err)
		assert.NotNil(t, b)
		require.NoError(t, b.Validate())
		assert.True(t, b.ID().IsEqual(validID))
		assert.Equal(t, "Luitton Vuis", b.Title())
		assert.Equal(t, "Champs-Elysees 101, Paris", b.Address())
		assert.Equal(t, kernel.France, b.Country())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		b, err := bloq.NewBloq(invalidID, "Title", "Address", kernel.France)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty title", func(t *testing.T) {
		b, err := bloq.NewBloq(validID, "", "Address", kernel.France)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, bloq.ErrTitleIsRequired)
	})

	t.Run("should return error for empty address", func(t *testing.T) {
		b, err := bloq.NewBloq(validID, "Title", "", kernel.France)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, bloq.ErrAddressIsRequired)
	})

	t.Run("should return error for invalid country", func(t *testing.T) {
		b, err := bloq.NewBloq(validID, "Title", "Address", kernel.CountryUnknown)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.Contains(t, err.Error(), "country")
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		b, err := bloq.NewBloq(validID, "", "", kernel.CountryUnknown)

		require.Error(t, err)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, bloq.ErrTitleIsRequired)
		assert.ErrorIs(t, err, bloq.ErrAddressIsRequired)
		assert.Contains(t, err.Error(), "country")
	})
}

func TestRestoreBloq(t *testing.T) {
	id := kernel.NewUUID()

	b, err := bloq.RestoreBloq(id, "Bloqinc", "Grote Markt 1, Brussels", kernel.Netherlands)

	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.True(t, b.ID().IsEqual(id))
}

func TestBloqValidate(t *testing.T) {
	t.Run("should fail on zero-value bloq", func(t *testing.T) {
		var b bloq.Bloq
		assert.ErrorIs(t, b.Validate(), bloq.ErrBloqIsNotConstructed)
	})

	t.Run("should fail on nil bloq", func(t *testing.T) {
		var b *bloq.Bloq
		assert.ErrorIs(t, b.Validate(), bloq.ErrBloqIsNotConstructed)
	})
}

func TestBloqIsEqual(t *testing.T) {
	id := kernel.NewUUID()
	b1, err := bloq.NewBloq(id, "One", "Address 1", kernel.Spain)
	require.NoError(t, err)
	b2, err := bloq.NewBloq(id, "Two", "Address 2", kernel.Poland)
	require.NoError(t, err)
	b3, err := bloq.NewBloq(kernel.NewUUID(), "One", "Address 1", kernel.Spain)
	require.NoError(t, err)

	assert.True(t, b1.IsEqual(b2))
	assert.False(t, b1.IsEqual(b3))
	assert.False(t, b1.IsEqual(nil))
}

func TestBloqRename(t *testing.T) {
	b, err := bloq.NewBloq(kernel.NewUUID(), "Old", "Address", kernel.Portugal)
	require.NoError(t, err)

	require.NoError(t, b.Rename("New"))
	assert.Equal(t, "New", b.Title())

	require.ErrorIs(t, b.Rename(""), bloq.ErrTitleIsRequired)
	assert.Equal(t, "New", b.Title())
}

func TestBloqRelocate(t *testing.T) {
	b, err := bloq.NewBloq(kernel.NewUUID(), "Title", "Old Street 1", kernel.Portugal)
	require.NoError(t, err)

	require.NoError(t, b.Relocate("New Street 2"))
	assert.Equal(t, "New Street 2", b.Address())

	require.ErrorIs(t, b.Relocate(""), bloq.ErrAddressIsRequired)
	assert.Equal(t, "New Street 2", b.Address())
}

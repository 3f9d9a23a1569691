package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalizeAccountPadsShortNumbers(t *testing.T) {
	acct, err := NormalizeAccount("1")
	require.NoError(t, err)
	assert.Equal(t, AccountNumber("00000000000001"), acct)
}

func TestNormalizeAccountKeepsFullLength(t *testing.T) {
	acct, err := NormalizeAccount("12345678901234")
	require.NoError(t, err)
	assert.Equal(t, AccountNumber("12345678901234"), acct)
}

func TestNormalizeAccountStripsSeparators(t *testing.T) {
	acct, err := NormalizeAccount("1234-5678 9012-34")
	require.NoError(t, err)
	assert.Equal(t, AccountNumber("12345678901234"), acct)
}

func TestNormalizeAccountRejectsLetters(t *testing.T) {
	_, err := NormalizeAccount("12345678positively")
	assert.ErrorIs(t, err, ErrAccountNotNumeric)
}

func TestNormalizeAccountRejectsEmpty(t *testing.T) {
	_, err := NormalizeAccount("")
	assert.ErrorIs(t, err, ErrAccountLength)

	_, err = NormalizeAccount("- -")
	assert.ErrorIs(t, err, ErrAccountLength)
}

func TestNormalizeAccountRejectsTooLong(t *testing.T) {
	_, err := NormalizeAccount("123456789012345")
	assert.ErrorIs(t, err, ErrAccountLength)
}

func TestNormalizeAccountIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{1,14}`).Draw(t, "digits")

		once, err := NormalizeAccount(digits)
		if err != nil {
			t.Fatalf("normalize %q: %v", digits, err)
		}

		twice, err := NormalizeAccount(string(once))
		if err != nil {
			t.Fatalf("re-normalize %q: %v", once, err)
		}

		if once != twice {
			t.Fatalf("normalize not idempotent: %q != %q", once, twice)
		}
		if len(once) != AccountNumberLength {
			t.Fatalf("normalized length %d, want %d", len(once), AccountNumberLength)
		}
	})
}

func TestFullName(t *testing.T) {
	p := &Player{FirstName: "Ada", LastName: "Marsh"}
	assert.Equal(t, "Ada Marsh", p.FullName())

	p = &Player{FirstName: "Cher"}
	assert.Equal(t, "Cher", p.FullName())
}

func TestNormalizeAccountPaddingIsZeros(t *testing.T) {
	acct, err := NormalizeAccount("42")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(acct), "000000000000"))
}

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/egyptid/core/logger"
	"github.com/dmitrymomot/egyptid/pkg/luhn"
)

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg := Config{Lang: "en", LogLevel: "error", Env: "production", CardLength: 16}
	log := logger.New(logger.WithOutput(io.Discard))
	a := newApp(cfg, log, func() time.Time { return fixedNow })

	var out bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func TestCardValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "card", "validate", "4111", "1111", "1111", "1111")
		require.NoError(t, err)
		assert.Contains(t, out, "true")
		assert.Contains(t, out, "Visa")
		assert.Contains(t, out, "4111 11** **** 1111")
		assert.NotContains(t, out, "4111111111111111")
	})

	t.Run("checksum failure", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "card", "validate", "4111111111111112")
		require.ErrorIs(t, err, errRejected)
		assert.Contains(t, out, "card number is not valid")
	})

	t.Run("arabic output", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--lang", "ar", "card", "validate", "4111111111111112")
		require.ErrorIs(t, err, errRejected)
		assert.Contains(t, out, "رقم البطاقة غير صحيح")
	})

	t.Run("weighted language list", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--lang", "fr,ar-EG;q=0.8,en;q=0.5", "card", "validate", "4111111111111112")
		require.ErrorIs(t, err, errRejected)
		assert.Contains(t, out, "رقم البطاقة غير صحيح")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--json", "card", "validate", "5078 0300 0000 0002")
		var view cardView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, "Meeza", view.Brand)
		assert.Equal(t, view.Valid, err == nil)
	})
}

func TestCardTrace(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--json", "card", "trace", "79927398713")
	require.NoError(t, err)

	var view traceView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.True(t, view.Valid)
	assert.Equal(t, 70, view.TotalSum)
	assert.Equal(t, 3, view.CheckDigit)
	require.Len(t, view.Steps, 11)
	assert.Equal(t, view.TotalSum, view.Steps[0].RunningSum)
	assert.False(t, view.Steps[10].Doubled)
	assert.True(t, view.Steps[9].Doubled)
}

func TestCardTrace_Text(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "card", "trace", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "valid:")
}

func TestCardGenerate(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--json", "card", "generate", "--prefix", "507803", "--length", "16", "-n", "5")
	require.NoError(t, err)

	var numbers []string
	require.NoError(t, json.Unmarshal([]byte(out), &numbers))
	require.Len(t, numbers, 5)
	for _, n := range numbers {
		assert.Len(t, n, 16)
		assert.True(t, strings.HasPrefix(n, "507803"))
		assert.True(t, luhn.Validate(n), n)
	}
}

func TestCardGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "card", "generate", "--prefix", "507803", "--length", "7")
	assert.ErrorIs(t, err, luhn.ErrOutOfRange)

	_, err = execute(t, "card", "generate", "--prefix", "abc")
	assert.ErrorIs(t, err, luhn.ErrInvalidArgument)

	_, err = execute(t, "card", "generate", "-n", "0")
	assert.Error(t, err)
}

func TestNationalID(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--json", "nid", "29001010100015")
	require.NoError(t, err)

	var view nationalIDView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "1990-01-01", view.BirthDate)
	assert.Equal(t, "01", view.GovernorateCode)
	assert.Equal(t, "Cairo", view.Governorate)
	assert.Equal(t, "Male", view.Gender)
	assert.Equal(t, 36, view.Profile.Age)
	assert.Equal(t, "Adult", view.Profile.AgeGroup)
	assert.Equal(t, "20th Century", view.Profile.Century)
	assert.Equal(t, "Millennials", view.Profile.Generation)
	assert.Equal(t, "Capricorn", view.Profile.Zodiac)
}

func TestNationalID_Arabic(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--lang", "ar", "nid", "29001010100015")
	require.NoError(t, err)
	assert.Contains(t, out, "القاهرة")
	assert.Contains(t, out, "ذكر")
}

func TestNationalID_Invalid(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "nid", "29013010100015")
	assert.Error(t, err)
}

func TestPhone(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--json", "phone", "+20", "101", "234", "5678")
	require.NoError(t, err)

	var view phoneView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "01012345678", view.National)
	assert.Equal(t, "+201012345678", view.E164)
	assert.Equal(t, "Vodafone", view.Carrier)

	_, err = execute(t, "phone", "0223456789")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("birth date", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--json", "classify", "2010-03-25")
		require.NoError(t, err)

		var view profileView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, 16, view.Age)
		assert.Equal(t, "Teenager", view.AgeGroup)
		assert.Equal(t, "21st Century", view.Century)
		assert.Equal(t, "Generation Z", view.Generation)
		assert.Equal(t, "Aries", view.Zodiac)
	})

	t.Run("generation range", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--json", "classify", "--generation", "generation z")
		require.NoError(t, err)

		var view generationRangeView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, 1997, view.Start)
		assert.Equal(t, 2012, view.End)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "classify")
		assert.Error(t, err)

		_, err = execute(t, "classify", "25/03/2010")
		assert.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("normalizes arabic input", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--json", "verify",
			"--name", "مُحَمَّد",
			"--nid", "٢٩٠٠١٠١٠١٠٠٠١٥",
			"--mobile", "+20 101 234 5678",
			"--card", "4111-1111-1111-1111",
		)
		require.NoError(t, err)

		var view verifyView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.True(t, view.Valid)
		assert.Equal(t, "محمد", view.Customer.Name)
		assert.Equal(t, "29001010100015", view.Customer.NationalID)
		assert.Equal(t, "201012345678", view.Customer.Mobile)
		assert.Equal(t, "411111******1111", view.MaskedCard)
		assert.NotContains(t, out, "4111111111111111")
	})

	t.Run("collects every error", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "--json", "verify", "--nid", "123", "--card", "4111111111111112")
		require.ErrorIs(t, err, errRejected)

		var view verifyView
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.False(t, view.Valid)
		assert.True(t, view.Errors.Has("NationalID"))
		assert.True(t, view.Errors.Has("Mobile"))
		assert.True(t, view.Errors.Has("Card"))
	})
}

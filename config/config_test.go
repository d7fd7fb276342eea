package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":     "9090",
		"BAD_INT":  "nine",
		"SECURE":   "true",
		"EMPTY":    "",
		"TIMEOUT":  "15",
		"ORIGINS":  "https://a.dev, ,https://b.dev",
		"NOT_BOOL": "maybe",
	}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
	assert.Equal(t, 9090, GetInt(c, "PORT", 1))
	assert.Equal(t, 1, GetInt(c, "BAD_INT", 1))
	assert.True(t, GetBool(c, "SECURE", false))
	assert.True(t, GetBool(c, "NOT_BOOL", true))
	assert.Equal(t, 15*time.Second, GetSeconds(c, "TIMEOUT", 180))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, GetList(c, "ORIGINS"))
	assert.Nil(t, GetList(c, "MISSING"))
}

func TestMergePrecedence(t *testing.T) {
	merged := Merge(
		map[string]string{"A": "file", "B": "file"},
		map[string]string{"B": "env"},
	)
	assert.Equal(t, "file", merged["A"])
	assert.Equal(t, "env", merged["B"])
}

func TestParseYAMLFlattensNestedKeys(t *testing.T) {
	doc := []byte(`
port: 8081
smtp:
  host: mail.example.com
  port: 587
accepted_origins:
  - https://a.dev
  - https://b.dev
`)
	got, err := parseYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, "8081", got["PORT"])
	assert.Equal(t, "mail.example.com", got["SMTP_HOST"])
	assert.Equal(t, "587", got["SMTP_PORT"])
	assert.Equal(t, "https://a.dev,https://b.dev", got["ACCEPTED_ORIGINS"])
}

func TestParseYAMLRejectsGarbage(t *testing.T) {
	_, err := parseYAML([]byte("key: [unclosed"))
	assert.Error(t, err)
}

type fakeSSM struct {
	pages [][]types.Parameter
	err   error
	calls int
}

func (f *fakeSSM) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[f.calls]
	f.calls++
	out := &ssm.GetParametersByPathOutput{Parameters: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestLoadSSMReadsAllPages(t *testing.T) {
	client := &fakeSSM{pages: [][]types.Parameter{
		{{Name: aws.String("/portfolio/prod/jwt_secret"), Value: aws.String("s3cret")}},
		{{Name: aws.String("/portfolio/prod/SMTP_HOST"), Value: aws.String("mail")}},
	}}

	got, err := LoadSSM(context.Background(), client, "/portfolio/prod")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"JWT_SECRET": "s3cret", "SMTP_HOST": "mail"}, got)
	assert.Equal(t, 2, client.calls)
}

func TestLoadSSMPropagatesErrors(t *testing.T) {
	_, err := LoadSSM(context.Background(), &fakeSSM{err: errors.New("denied")}, "/x")
	assert.ErrorContains(t, err, "denied")
}

package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LoadSSM reads every parameter below parameterPath from AWS SSM Parameter
// Store. The key is the last path segment, so /portfolio/prod/JWT_SECRET
// becomes JWT_SECRET.
func LoadSSM(ctx context.Context, client ssm.GetParametersByPathAPIClient, parameterPath string) (map[string]string, error) {
	out := make(map[string]string)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(parameterPath),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("load ssm parameters under %s: %w", parameterPath, err)
		}
		for _, p := range page.Parameters {
			name := aws.ToString(p.Name)
			if name == "" {
				continue
			}
			out[strings.ToUpper(path.Base(name))] = aws.ToString(p.Value)
		}
	}
	return out, nil
}

// NewSSMClient builds an SSM client from the default AWS credential chain.
func NewSSMClient(ctx context.Context, region string) (*ssm.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// Load assembles the runtime configuration: optional YAML file, optional SSM
// parameters, then the process environment on top.
func Load(ctx context.Context) (map[string]string, error) {
	env := New()
	var layers []map[string]string

	if file := GetString(env, "CONFIG_FILE", ""); file != "" {
		fromFile, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		layers = append(layers, fromFile)
	}

	// SSM settings may themselves come from the file.
	base := Merge(append(layers, env)...)
	if paramPath := GetString(base, "SSM_PARAMETER_PATH", ""); paramPath != "" {
		client, err := NewSSMClient(ctx, GetString(base, "AWS_REGION", ""))
		if err != nil {
			return nil, err
		}
		fromSSM, err := LoadSSM(ctx, client, paramPath)
		if err != nil {
			return nil, err
		}
		layers = append(layers, fromSSM)
	}

	layers = append(layers, env)
	return Merge(layers...), nil
}

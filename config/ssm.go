package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterStore is the subset of the SSM client used to resolve secrets
type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterStore builds an SSM client from the default AWS credential chain
func NewParameterStore(ctx context.Context) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// NeedsSecrets reports whether any value must be fetched from SSM
func (c DatabaseConfig) NeedsSecrets() bool {
	return c.PasswordSSMParameter != ""
}

// ResolveSecrets replaces Password with the decrypted SSM parameter when one is configured
func (c *DatabaseConfig) ResolveSecrets(ctx context.Context, store ParameterStore) error {
	if !c.NeedsSecrets() {
		return nil
	}

	out, err := store.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(c.PasswordSSMParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get parameter %s: %w", c.PasswordSSMParameter, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return fmt.Errorf("parameter %s has no value", c.PasswordSSMParameter)
	}

	c.Password = aws.ToString(out.Parameter.Value)
	return nil
}

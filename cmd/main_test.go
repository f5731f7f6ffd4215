package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{name: "none", args: []string{"serve"}, want: nil},
		{name: "short before command", args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		{name: "short after command", args: []string{"jwt", "--subject", "x", "-c", "prod.yml"}, want: []string{"-c", "prod.yml"}},
		{name: "short with value", args: []string{"migrate", "-c=prod.yml"}, want: []string{"-c=prod.yml"}},
		{name: "long with value", args: []string{"migrate", "--config=prod.yml"}, want: []string{"-c=prod.yml"}},
		{name: "long", args: []string{"--config", "prod.yml", "migrate"}, want: []string{"-c", "prod.yml"}},
		{name: "missing value", args: []string{"serve", "-c"}, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, configArgs(tc.args))
		})
	}
}

// Copyright 2020 PingCAP, Inc. Licensed under Apache-2.0.

package main

import (
	"io"

	"github.com/andreimuntean/Quickselect/pkg/config"
	"github.com/andreimuntean/Quickselect/pkg/kthselect"
	"github.com/andreimuntean/Quickselect/pkg/util/logutil"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCommand(in io.Reader, registry *prometheus.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kthselect <file>",
		Short: "kthselect finds the k-th greatest distinct integer in a file and its index.",
		Args: func(_ *cobra.Command, args []string) error {
			_, err := kthselect.ValidateArgs(args)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args, in, registry)
		},
	}
	config.DefineFlags(cmd.Flags())
	return cmd
}

func runSelect(cmd *cobra.Command, args []string, in io.Reader, registry *prometheus.Registry) error {
	path, err := kthselect.ValidateArgs(args)
	if err != nil {
		return err
	}
	conf := config.NewConfig()
	if err = conf.ParseFromFlags(cmd.Flags()); err != nil {
		return err
	}
	if err = logutil.InitLogger(conf.Log.ToLogConfig()); err != nil {
		return errors.Annotate(err, "init logger")
	}
	kthselect.RegisterMetrics(registry)
	defer kthselect.LogMetrics(registry)

	task := kthselect.NewTask(conf, afero.NewOsFs(), in, cmd.OutOrStdout())
	_, err = task.Run(cmd.Context(), path)
	return err
}

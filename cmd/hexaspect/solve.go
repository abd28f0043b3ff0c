package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexaspect/growth"
	"github.com/katalvlaran/hexaspect/labelgraph"
	"github.com/katalvlaran/hexaspect/layout"
)

type solveOptions struct {
	layoutPath string
	outPath    string
	format     string
	weights    map[string]int64
	fillAll    bool
	maxSteps   int
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Grow labels from the seeds of a layout until they are connected",
		Long: `Reads a layout ({"radius": R, "cells": {"x,y,z": "label" | "disabled"}}),
places labels one cell at a time until every seed is connected, and writes the
resulting layout to --out or stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, root, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.layoutPath, "layout", "l", "", "seed layout file (.json, .yaml, .yml)")
	f.StringVarP(&o.outPath, "out", "o", "", "write the solved layout to this file instead of stdout")
	f.StringVar(&o.format, "format", "json", "stdout format: json or yaml")
	f.StringToInt64Var(&o.weights, "weight", nil, "label weight override, name=cost (repeatable)")
	f.BoolVar(&o.fillAll, "fill-all", false, "keep placing labels after the seeds are connected")
	f.IntVar(&o.maxSteps, "max-steps", 0, "stop after this many placements (0 = no limit)")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

func runSolve(cmd *cobra.Command, root *rootOptions, o *solveOptions) error {
	log := root.log

	// 1) Inputs.
	cat, err := root.loadCatalog()
	if err != nil {
		return err
	}
	lg, err := labelgraph.New(cat)
	if err != nil {
		return err
	}
	w, err := lg.Weights(o.weights)
	if err != nil {
		return err
	}
	doc, err := layout.Load(o.layoutPath)
	if err != nil {
		return err
	}
	grid, err := doc.Build(lg)
	if err != nil {
		return errors.Wrapf(err, "solve: apply %s", o.layoutPath)
	}
	log.WithFields(logrus.Fields{
		"catalog": cat.Version(),
		"labels":  lg.Len(),
		"radius":  grid.Radius(),
		"enabled": grid.Enabled(),
		"seeds":   len(grid.Assigned()),
	}).Info("loaded layout")

	// 2) Grow.
	opts := []growth.Option{
		growth.WithMaxSteps(o.maxSteps),
		growth.WithOnStep(func(p growth.Placement) error {
			log.WithFields(logrus.Fields{
				"step":  p.Step,
				"cell":  p.Coord.String(),
				"label": p.Label,
				"cost":  p.Cost,
			}).Info("placed")
			return nil
		}),
	}
	if o.fillAll {
		opts = append(opts, growth.WithFillAll())
	}
	start := time.Now()
	res, err := growth.Solve(cmd.Context(), grid, lg, w, opts...)
	if err != nil {
		if res != nil {
			log.WithFields(logrus.Fields{"state": res.State, "steps": res.Steps}).Error("solve stopped")
		}
		return err
	}
	log.WithFields(logrus.Fields{
		"state":   res.State,
		"steps":   res.Steps,
		"elapsed": time.Since(start).Round(time.Microsecond),
	}).Info("solved")

	// 3) Output.
	out := layout.FromGrid(grid)
	if o.outPath != "" {
		return layout.Save(o.outPath, out)
	}
	format := layout.JSON
	if o.format == "yaml" {
		format = layout.YAML
	}
	data, err := layout.Encode(out, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

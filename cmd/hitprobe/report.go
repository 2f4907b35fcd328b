package main

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/geometry"
	"github.com/df07/go-hittable/pkg/probe"
	"github.com/df07/go-hittable/pkg/scene"
)

func renderScenes(infos []scene.Info) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Name", "Title", "Seeded", "Description"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.DisplayName, info.Random, info.Description})
	}
	return t.Render()
}

func renderStats(s *scene.Scene, stats geometry.BVHStats, validation error) string {
	valid := "ok"
	if validation != nil {
		valid = validation.Error()
	}
	box := s.World.BoundingBox()

	t := table.NewWriter()
	t.SetTitle(s.Name)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Top-level objects", stats.Objects},
		{"Primitives", s.PrimitiveCount()},
		{"BVH nodes", stats.Nodes},
		{"BVH leaves", stats.Leaves},
		{"Max depth", stats.MaxDepth},
		{"Avg leaf depth", fmt.Sprintf("%.2f", stats.AvgDepth)},
		{"Bounds min", formatVec(box.Min())},
		{"Bounds max", formatVec(box.Max())},
		{"Validation", valid},
	})
	return t.Render()
}

func renderProbe(s *scene.Scene, res *probe.Result) string {
	t := table.NewWriter()
	t.SetTitle(s.Name)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Rays", res.Rays},
		{"Workers", res.Workers},
		{"Hits", res.Hits},
		{"Hit fraction", fmt.Sprintf("%.4f", res.HitFraction)},
		{"Mean t", fmt.Sprintf("%.4f", res.MeanT)},
		{"Std dev t", fmt.Sprintf("%.4f", res.StdDevT)},
		{"Mismatches", res.Mismatches},
		{"Elapsed", res.Elapsed.String()},
	})

	kinds := lo.Keys(res.Kinds)
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	t.AppendSeparator()
	for _, kind := range kinds {
		t.AppendRow(table.Row{"Nodes: " + kind.String(), res.Kinds[kind]})
	}

	materials := lo.Keys(res.Materials)
	sort.Strings(materials)
	t.AppendSeparator()
	for _, name := range materials {
		t.AppendRow(table.Row{"Hits: " + name, res.Materials[name]})
	}
	return t.Render()
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

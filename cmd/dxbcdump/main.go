package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/gogpu/dxbc/container"
	"github.com/gogpu/dxbc/reflection"
)

func main() {
	var (
		blobFile    = flag.String("blob", "", "Path to compiled shader blob (.cso/.dxbc)")
		jsonOut     = flag.Bool("json", false, "Emit reflection data as JSON")
		chunksOnly  = flag.Bool("chunks", false, "List container chunks and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *blobFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: dxbcdump -blob <shader.cso> [-json]")
		fmt.Fprintln(os.Stderr, "       dxbcdump -blob <shader.cso> -chunks")
		fmt.Fprintln(os.Stderr, "       dxbcdump -blob <shader.cso> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*blobFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*blobFile, *jsonOut, *chunksOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dump is the JSON shape of one reflected blob.
type dump struct {
	File           string                          `json:"file"`
	Desc           reflection.Desc                 `json:"desc"`
	Inputs         []reflection.SignatureParameter `json:"inputs,omitempty"`
	Outputs        []reflection.SignatureParameter `json:"outputs,omitempty"`
	PatchConstants []reflection.SignatureParameter `json:"patch_constants,omitempty"`
	Resources      []reflection.ResourceBinding    `json:"resources,omitempty"`
}

func run(blobFile string, jsonOut, chunksOnly bool) error {
	data, err := os.ReadFile(blobFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if chunksOnly {
		c, err := container.Parse(data)
		if err != nil {
			return fmt.Errorf("parse container: %w", err)
		}
		for _, info := range c.Chunks() {
			fmt.Printf("%s  %d bytes\n", info.Tag, info.Size)
		}
		return nil
	}

	refl, err := reflection.New(data)
	if err != nil {
		return fmt.Errorf("reflect: %w", err)
	}
	desc := refl.Desc()

	d := dump{File: blobFile, Desc: desc}
	for i := 0; i < desc.InputParameters; i++ {
		p, _ := refl.InputParameter(i)
		d.Inputs = append(d.Inputs, p)
	}
	for i := 0; i < desc.OutputParameters; i++ {
		p, _ := refl.OutputParameter(i)
		d.Outputs = append(d.Outputs, p)
	}
	for i := 0; i < desc.PatchConstantParameters; i++ {
		p, _ := refl.PatchConstantParameter(i)
		d.PatchConstants = append(d.PatchConstants, p)
	}
	for i := 0; i < desc.BoundResources; i++ {
		b, _ := refl.ResourceBinding(i)
		d.Resources = append(d.Resources, b)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	printDump(d)
	return nil
}

func printDump(d dump) {
	heading := func(s string) string { return s }
	if term.IsTerminal(int(os.Stdout.Fd())) {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB"))
		heading = func(s string) string { return style.Render(s) }
	}

	fmt.Printf("%s %s\n", heading("Blob:"), d.File)
	fmt.Printf("%s %#x  %s %q\n", heading("Version:"), d.Desc.Version, heading("Creator:"), d.Desc.Creator)
	fmt.Printf("%s %d  %s %d\n", heading("Bound resources:"), d.Desc.BoundResources,
		heading("Constant buffers:"), d.Desc.ConstantBuffers)

	printSignature(heading("Inputs:"), d.Inputs)
	printSignature(heading("Outputs:"), d.Outputs)
	printSignature(heading("Patch constants:"), d.PatchConstants)

	if len(d.Resources) > 0 {
		fmt.Printf("\n%s\n", heading("Resources:"))
		for _, b := range d.Resources {
			fmt.Printf("  %-24s %-12s t%d[%d]\n", b.Name, b.Kind, b.BindPoint, b.BindCount)
		}
	}

	s := d.Desc.Statistics
	fmt.Printf("\n%s %d instructions, %d temps, %d static / %d dynamic flow control\n",
		heading("Statistics:"), s.InstructionCount, s.TempRegisterCount,
		s.StaticFlowControlCount, s.DynamicFlowControlCount)
}

func printSignature(heading string, params []reflection.SignatureParameter) {
	if len(params) == 0 {
		return
	}
	fmt.Printf("\n%s\n", heading)
	for _, p := range params {
		fmt.Printf("  %-20s%-4d r%-3d %-8s mask %#02x\n",
			p.SemanticName, p.SemanticIndex, p.Register, p.ComponentType, p.Mask)
	}
}

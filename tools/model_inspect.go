package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"ml-showcase/ai"
	"ml-showcase/repositories"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type inspectConfig struct {
	ModelDir string `envconfig:"MODEL_DIR" default:"models"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"ERROR"`
}

// Lists the artifacts of the models directory and whether the server could load them.
func main() {
	var config inspectConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	dir := flag.String("dir", config.ModelDir, "Models directory to inspect")
	flag.Parse()

	repository := repositories.NewArtifactRepository(*dir, logs.GetLoggerFromString(config.LogLevel))
	infos, err := repository.Describe()
	if err != nil {
		log.Fatal("Error while reading models directory: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Format", "Size", "Kind", "Width", "Status"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, info := range infos {
		kind, width, status := "-", "-", "unsupported format"
		if info.Supported {
			kind, width, status = describe(repository, info)
		}
		table.Append([]string{info.Name, info.Format, strconv.FormatInt(info.Size, 10), kind, width, status})
	}

	if len(infos) == 0 {
		fmt.Printf("No artifact in %s, the server will serve mocks\n", *dir)
		return
	}
	table.Render()
}

// describe decodes the file of info itself, so a name present in several
// formats gets one accurate row per file.
func describe(repository repositories.ArtifactRepository, info repositories.ArtifactInfo) (string, string, string) {
	artifact, err := repository.Decode(info)
	if err != nil {
		return "-", "-", err.Error()
	}
	width := "-"
	switch a := artifact.(type) {
	case *ai.HashingVectorizer:
		width = strconv.Itoa(a.Size())
	case *ai.LogisticRegression:
		width = strconv.Itoa(a.Width())
	}
	return string(artifact.Kind()), width, "ok"
}

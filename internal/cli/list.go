package cli

import (
	"fmt"

	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/logger"
	"github.com/djcomp/djcomp/internal/view"
)

// ListParams contains parameters for the List command
type ListParams struct {
	Sorted   bool
	LogLevel string
	Provider ProviderOptions
}

// List discovers the project's management commands and prints them.
func List(params ListParams) error {
	log := logger.New(params.LogLevel, nil)

	res, err := discovery.Discover(buildProvider(params.Provider, log))
	if err != nil {
		return err
	}

	if params.Sorted {
		res = res.Sorted()
	}

	fmt.Println(view.Render(res))
	return nil
}

package scripts

import (
	"os"
	"wallhaven-go/utils"
	"wallhaven-go/wallhaven"
)

const configFile = "config.yaml"

// buildClient loads config.yaml (falling back to defaults when it does not
// exist) and constructs a client from it.
func buildClient(logger utils.Logger) (*wallhaven.Wallhaven, *utils.Config) {
	config, err := utils.ParseConfig(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			panic("failed to parse config file: " + err.Error())
		}
		config = utils.DefaultConfig()
	}

	client := wallhaven.New(config.ApiKey, logger)
	if config.BaseURL != "" {
		client.SetBaseURL(config.BaseURL)
	}
	client.SetTimeout(config.Timeout)
	return client, config
}

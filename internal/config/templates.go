package config

import (
	"fmt"
	"os"
)

func Template() string {
	return template
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const template = `# decsctl configuration.
# Either pin a variant (proteox_v1, proteox_v3, teslatron) or give the
# system model and DECS version and let decsctl pick one.
model = "proteox"
decs_version = "1.4"
# variant = "proteox_v3"

# text, json or yaml
format = "text"
log_level = "info"
`

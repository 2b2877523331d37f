package cli

import "pspec/internal/app"

// newAppService is a variable so tests can substitute the service.
var newAppService = app.NewService

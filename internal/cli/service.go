package cli

import "pipcheck/internal/app"

func newAppService() app.Service {
	return app.NewService()
}

package main

import (
	"context"

	"github.com/pixil98/go-adventure/cmd/adventure/command"
	"github.com/pixil98/go-service"
	"github.com/sirupsen/logrus"
)

func main() {
	app, err := service.NewApp(&command.Config{}, command.BuildWorkers)
	if err != nil {
		logrus.WithError(err).Fatal("creating application")
	}

	err = app.Run(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("running application")
	}

	logrus.Info("exiting")
}

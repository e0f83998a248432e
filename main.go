package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/api"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/cipher"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/config"
	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag/util"
)

func main() {

	if util.DebugEnabled() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	codec, err := cipher.New(cfg.EncryptionKey)
	if err != nil {
		logrus.Fatalf("cipher: %v", err)
	}

	client := api.New(cfg, codec)
	corr := api.NewCorrelator(cfg)
	vehicles := api.NewVehicleService(client, corr)

	makers, err := vehicles.MakerList(context.Background())
	if err != nil {
		logrus.Fatalf("vehicle maker list: %v", err)
	}

	for _, m := range makers.Items {
		logrus.Infof("maker: %s (%s)", m.Label, m.Value)
	}
}

package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_scaler_client.go ../scalerapi ScalerClient
//counterfeiter:generate -o ./fake_store.go ../session Store

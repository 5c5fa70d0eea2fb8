// Package proto holds the service definitions; stubs are generated into gen/.
package proto

//go:generate protoc --proto_path=. --go_out=../gen --go_opt=paths=source_relative --go-grpc_out=../gen --go-grpc_opt=paths=source_relative extractor/v1/extractor.proto

package main

import "go.uber.org/zap"

var decoderLog = zap.NewNop()
var statsLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	decoderLog = l.Named("decoder")
	statsLog = l.Named("stats")
}

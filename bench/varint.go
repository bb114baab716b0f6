package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/overphoenix/smartbuffer"
)

func init() {
	log.SetLevel(log.InfoLevel)
}

const rounds = 1_000_000

func main() {
	b := smartbuffer.New(16 * rounds / 1000)

	start := time.Now()
	for i := 0; i < rounds; i++ {
		b.Reset()
		if _, err := b.WriteVarint64ZigZag(int64(i) * 7919); err != nil {
			fmt.Printf("write error: %+v", err)
			os.Exit(1)
		}
		if _, err := b.ReadVarint64ZigZag(); err != nil {
			fmt.Printf("read error: %+v", err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d zigzag varint64 round trips in %v\n", rounds, time.Since(start))

	start = time.Now()
	b.Reset()
	for i := 0; i < rounds; i++ {
		if _, err := b.WriteVarint32(int32(i)); err != nil {
			fmt.Printf("write error: %+v", err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d varint32 writes in %v, %d bytes\n", rounds, time.Since(start), b.Len())
}

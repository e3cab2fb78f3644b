package singleton

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

const defaultData = 10

type Singleton struct {
	Data int
}

var (
	instance *Singleton
	once     sync.Once
)

// Instance returns the process wide Singleton, creating it on first use.
func Instance() *Singleton {
	once.Do(func() {
		log.Debug("create singleton instance")
		instance = &Singleton{Data: defaultData}
	})
	return instance
}

package dbmetrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisHook пишет длительность команд redis в тот же Recorder, что и SQL-обертка.
// redis.Nil не считается ошибкой. Команды установки соединения (HELLO, CLIENT SETINFO ...)
// не записываются: go-redis игнорирует их ошибки на серверах без этих команд.
type RedisHook struct {
	recorder Recorder
}

// NewRedisHook создает хук для client.AddHook
func NewRedisHook(recorder Recorder) *RedisHook {
	return &RedisHook{recorder: recorder}
}

func (h *RedisHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *RedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if isConnSetup(cmd) {
			return next(ctx, cmd)
		}
		start := time.Now()
		err := next(ctx, cmd)
		h.recorder.ObserveDBQuery("redis_"+cmd.Name(), time.Since(start), filterNil(err))
		return err
	}
}

func (h *RedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if allConnSetup(cmds) {
			return next(ctx, cmds)
		}
		start := time.Now()
		err := next(ctx, cmds)
		h.recorder.ObserveDBQuery("redis_pipeline", time.Since(start), filterNil(err))
		return err
	}
}

// connSetupCommands команды, которые go-redis отправляет при открытии соединения
var connSetupCommands = map[string]struct{}{
	"hello":  {},
	"client": {},
	"auth":   {},
	"select": {},
}

func isConnSetup(cmd redis.Cmder) bool {
	_, ok := connSetupCommands[cmd.Name()]
	return ok
}

func allConnSetup(cmds []redis.Cmder) bool {
	if len(cmds) == 0 {
		return false
	}
	for _, cmd := range cmds {
		if !isConnSetup(cmd) {
			return false
		}
	}
	return true
}

func filterNil(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

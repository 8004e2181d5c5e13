package store

import "sync"

// keyLocks 按键维护互斥锁，序列化同一键上的写操作。
// 不同键互不阻塞，同键的读改写序列整体互斥，避免丢失更新。
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*sync.Mutex)}
}

// get 返回 key 对应的互斥锁，不存在则创建
func (k *keyLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, ok := k.locks[key]; !ok {
		k.locks[key] = &sync.Mutex{}
	}

	return k.locks[key]
}

func signKey(uid, date string) string {
	return "sign:" + uid + "|" + date
}

func userKey(uid string) string {
	return "user:" + uid
}

func bindKey(userID, botID string) string {
	return "bind:" + userID + "|" + botID
}

// 清理是跨键的批量删除，单独占一个维护键
const purgeKey = "sign:purge"

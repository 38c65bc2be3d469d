package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testShipPosition struct {
	X, Y float64
}

type testShipVelocity struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID 从 1 开始，0 保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testShipPosition{X: 300, Y: 526})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testShipPosition{}))
	if !found {
		t.Fatal("Component should be found")
	}

	pos := comp.(*testShipPosition)
	if pos.X != 300 || pos.Y != 526 {
		t.Errorf("Component data mismatch, expected (300, 526), got (%f, %f)", pos.X, pos.Y)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体添加组件应被忽略
	em.AddComponent(EntityID(42), &testShipPosition{})

	if _, found := em.GetComponent(EntityID(42), reflect.TypeOf(&testShipPosition{})); found {
		t.Error("Unknown entity should not receive components")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestAddComponentReplacesSameType(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testShipPosition{X: 1})
	em.AddComponent(id, &testShipPosition{X: 2})

	pos, ok := GetComponent[*testShipPosition](em, id)
	if !ok || pos.X != 2 {
		t.Errorf("Expected replaced position X=2, got %+v (found=%v)", pos, ok)
	}
}

func TestGetEntitiesWithKeepsCreationOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testShipPosition{X: float64(i)})
		ids = append(ids, id)
	}
	// 只有偶数实体拥有速度
	for i, id := range ids {
		if i%2 == 0 {
			em.AddComponent(id, &testShipVelocity{})
		}
	}

	all := em.GetEntitiesWith(reflect.TypeOf(&testShipPosition{}))
	if len(all) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("Query order mismatch at %d: expected %d, got %d", i, ids[i], all[i])
		}
	}

	moving := em.GetEntitiesWith(
		reflect.TypeOf(&testShipPosition{}),
		reflect.TypeOf(&testShipVelocity{}),
	)
	if len(moving) != 10 {
		t.Errorf("Expected 10 entities with both components, got %d", len(moving))
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testShipPosition{X: 10, Y: 20})

	pos, ok := GetComponent[*testShipPosition](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find position")
	}
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("Expected (10, 20), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testShipVelocity](em, id); ok {
		t.Error("Generic GetComponent should not find velocity")
	}

	em.AddComponent(id, &testShipVelocity{VX: 1})
	other := em.CreateEntity()
	em.AddComponent(other, &testShipPosition{})
	got := GetEntitiesWith3[*testShipPosition, *testShipVelocity, *testShipPosition](em)
	if len(got) != 1 || got[0] != id {
		t.Errorf("GetEntitiesWith3 mismatch: %v", got)
	}
}

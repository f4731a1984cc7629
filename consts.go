/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package dynprops

// Slot table capacity allocated on first property access of a PropertyData
const initialSlotsCap = 8

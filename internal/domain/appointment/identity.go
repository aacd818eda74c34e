package appointment

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// CustomerID derives the customer identity from its name and phone.
// The MD5 digest of first+last+phone is laid out in .NET Guid byte order
// (first three groups little-endian) so ids stay compatible with rows
// written by the earlier service.
func CustomerID(firstName, lastName, phone string) uuid.UUID {
	sum := md5.Sum([]byte(firstName + lastName + phone))

	var id uuid.UUID
	id[0], id[1], id[2], id[3] = sum[3], sum[2], sum[1], sum[0]
	id[4], id[5] = sum[5], sum[4]
	id[6], id[7] = sum[7], sum[6]
	copy(id[8:], sum[8:])
	return id
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	selectAllEntries = `SELECT id, title, date, time, location, mood, content, image_url,
       audio_url, audio_duration, people_ids, is_highlight, lat, lng, is_capsule, unlock_date
  FROM entries`

	selectEntryByID = selectAllEntries + ` WHERE id = ?`

	upsertEntry = `INSERT INTO entries
      (id, title, date, time, location, mood, content, image_url,
       audio_url, audio_duration, people_ids, is_highlight, lat, lng, is_capsule, unlock_date)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    ON CONFLICT(id) DO UPDATE SET
      title = excluded.title,
      date = excluded.date,
      time = excluded.time,
      location = excluded.location,
      mood = excluded.mood,
      content = excluded.content,
      image_url = excluded.image_url,
      audio_url = excluded.audio_url,
      audio_duration = excluded.audio_duration,
      people_ids = excluded.people_ids,
      is_highlight = excluded.is_highlight,
      lat = excluded.lat,
      lng = excluded.lng,
      is_capsule = excluded.is_capsule,
      unlock_date = excluded.unlock_date`

	deleteEntryByID = `DELETE FROM entries WHERE id = ?`

	selectAllPeople = `SELECT id, name, role, memories_count, image_url, bio FROM people`

	selectPersonByID = selectAllPeople + ` WHERE id = ?`

	upsertPerson = `INSERT INTO people (id, name, role, memories_count, image_url, bio)
    VALUES (?, ?, ?, ?, ?, ?)
    ON CONFLICT(id) DO UPDATE SET
      name = excluded.name,
      role = excluded.role,
      memories_count = excluded.memories_count,
      image_url = excluded.image_url,
      bio = excluded.bio`

	deletePersonByID = `DELETE FROM people WHERE id = ?`

	selectSlotByName = `SELECT value FROM slots WHERE name = ?`

	upsertSlot = `INSERT INTO slots (name, value) VALUES (?, ?)
    ON CONFLICT(name) DO UPDATE SET value = excluded.value`

	deleteSlotByName = `DELETE FROM slots WHERE name = ?`

	deleteAllEntries = `DELETE FROM entries`
	deleteAllPeople  = `DELETE FROM people`
	deleteAllSlots   = `DELETE FROM slots`
)
